package env

import (
	"os"
)

type convertible interface {
	~[]byte | ~string
}

var (
	HS256_SECRET    []byte
	DB_CONN         string
	APP_PORT        string
	APP_URL         string
	NSQD_TCP_ADDR   string
	NSQLOOKUPD_ADDR string
	SMTP_HOST       string
	SMTP_PORT       string
	SMTP_USER       string
	SMTP_PASS       string
	SMTP_FROM       string
)

func initEnv[T convertible](dst *T, key string) {
	v := os.Getenv(key)
	if v == "" {
		os.Exit(1)
	}
	*dst = T(v)
}

// optEnv loads vars the server can run without. Email delivery is
// best-effort and skipped entirely when SMTP is unconfigured.
func optEnv[T convertible](dst *T, key string) {
	*dst = T(os.Getenv(key))
}

func init() {
	initEnv(&HS256_SECRET, "HS256_SECRET")
	initEnv(&DB_CONN, "DB_CONN")
	initEnv(&APP_PORT, "APP_PORT")
	initEnv(&NSQD_TCP_ADDR, "NSQD_TCP_ADDR")
	initEnv(&NSQLOOKUPD_ADDR, "NSQLOOKUPD_ADDR")
	optEnv(&APP_URL, "APP_URL")
	optEnv(&SMTP_HOST, "SMTP_HOST")
	optEnv(&SMTP_PORT, "SMTP_PORT")
	optEnv(&SMTP_USER, "SMTP_USER")
	optEnv(&SMTP_PASS, "SMTP_PASS")
	optEnv(&SMTP_FROM, "SMTP_FROM")
}
