package config

type InternalConfig struct {
	App     App
	JWT     JWT
	Session Session
	Audit   Audit
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	NotificationQueue        string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Session struct {
	MaxConcurrentSessions int
	TimeoutMinutes        int
	SweepIntervalMinutes  int
}

type Audit struct {
	BufferSize     int
	WritesPerSec   int
	PresignedHours int
}
