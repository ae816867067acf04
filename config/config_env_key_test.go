package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	// Shape of config.yaml after parsing; env keys are matched against it.
	loaded := map[string]any{
		"env": map[string]any{
			"autoMigrate": true,
			"log":         map[string]any{"level": "debug"},
		},
		"http": map[string]any{
			"maxRequestBodySize": "25MB",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "storefront"},
		},
		"catalog":   map[string]any{"maxImageSize": "5MB"},
		"secretKey": map[string]any{"access": ""},
		"storage":   map[string]any{"bucketUrl": "", "publicBaseUrl": ""},
		"qrcode":    map[string]any{"errorCorrectionLevel": "M"},
	}

	cases := map[string]string{
		"ENV_AUTOMIGRATE":             "env.autoMigrate",
		"ENV_LOG_LEVEL":               "env.log.level",
		"HTTP_MAXREQUESTBODYSIZE":     "http.maxRequestBodySize",
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"CATALOG_MAXIMAGESIZE":        "catalog.maxImageSize",
		"SECRETKEY_ACCESS":            "secretKey.access",
		"STORAGE_PUBLICBASEURL":       "storage.publicBaseUrl",
		"QRCODE_ERRORCORRECTIONLEVEL": "qrcode.errorCorrectionLevel",
		"STORAGE__BUCKETURL":          "storage.bucketUrl",
		// Keys missing from the file fall back to dotted lower case.
		"ADMIN_EMAIL": "admin.email",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, loaded))
		})
	}
}
