package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("HORIZON_DAYS", "")
	t.Setenv("PAYMENT_DELAY_MS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv()
	if env.AppAddr != ":8001" {
		t.Fatalf("AppAddr = %q, want :8001", env.AppAddr)
	}
	if env.StoreDriver != "mysql" {
		t.Fatalf("StoreDriver = %q, want mysql", env.StoreDriver)
	}
	if env.HorizonDays != 120 {
		t.Fatalf("HorizonDays = %d, want 120", env.HorizonDays)
	}
	if env.PaymentDelayMS != 2000 {
		t.Fatalf("PaymentDelayMS = %d, want 2000", env.PaymentDelayMS)
	}
	if len(env.CORSOrigins) != 1 || env.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins = %v, want [*]", env.CORSOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HORIZON_DAYS", "30")
	t.Setenv("PAYMENT_DELAY_MS", "garbage")

	env := LoadEnv()
	if env.AppAddr != ":9000" {
		t.Fatalf("AppAddr = %q, want :9000", env.AppAddr)
	}
	if env.StoreDriver != "memory" {
		t.Fatalf("StoreDriver = %q, want memory", env.StoreDriver)
	}
	if env.HorizonDays != 30 {
		t.Fatalf("HorizonDays = %d, want 30", env.HorizonDays)
	}
	if env.PaymentDelayMS != 2000 {
		t.Fatalf("bad PAYMENT_DELAY_MS not defaulted: %d", env.PaymentDelayMS)
	}
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins = %v", env.CORSOrigins)
	}
}
