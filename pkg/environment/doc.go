// Package environment names the deployment environment the service runs in.
//
// Environment implements encoding.TextUnmarshaler, so it can be decoded
// straight from APP_ENV by the config loader. Short aliases ("dev", "stage",
// "prod") are accepted; anything unrecognised is treated as development.
package environment
