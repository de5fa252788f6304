package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()

	if c.APR != 0.08 {
		t.Fatalf("APR default = %v, want 0.08", c.APR)
	}
	if c.InstalmentsPerYear != 12 {
		t.Fatalf("InstalmentsPerYear default = %d, want 12", c.InstalmentsPerYear)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOAN_APR", "0.12")
	t.Setenv("INSTALMENTS_PER_YEAR", "4")
	t.Setenv("REDIS_DB", "3")

	c := Load()
	if c.APR != 0.12 || c.InstalmentsPerYear != 4 || c.RedisDB != 3 {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestValidate_BadAPR(t *testing.T) {
	c := Load()
	c.APR = 1.5
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for APR >= 1")
	}
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DB", "loandb")
	t.Setenv("MYSQL_USER", "svc")
	t.Setenv("MYSQL_PASS", "secret")

	dsn := Load().MySQLDSN()
	if !strings.HasPrefix(dsn, "svc:secret@tcp(db.internal:3307)/loandb?") {
		t.Fatalf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn missing parseTime: %q", dsn)
	}
}
