package app

// Set at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/peritagem-backend/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/peritagem-backend/internal/app.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the version reported by /health and the telemetry resource,
// e.g. "1.4.0+3f2a9c1".
func BuildVersion() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return Version + "+" + short
}
