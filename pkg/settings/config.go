package settings

import "time"

type Config struct {
	Office   Office
	Logger   Logger
	Document SnowflakeNode
}

// Office is the run configuration of the office simulation. Keys use the
// classic office config file names ("nClerk = 3").
type Office struct {
	Clerks        int    `properties:"nClerk,default=1" validate:"gt=0"`
	DocsPerClerk  int    `properties:"nDoc,default=1" validate:"gte=0"`
	ClerkDelay    int    `properties:"tClerk,default=0" validate:"gte=0"`
	Scanners      int    `properties:"nScanner,default=1" validate:"gt=0"`
	ScannerDelay  int    `properties:"tScanner,default=0" validate:"gte=0"`
	QueueSize     int    `properties:"sQueue,default=1" validate:"gt=0"`
	TimeUnit      string `properties:"timeUnit,default=s" validate:"oneof=ms s"`
	DrainOnFinish bool   `properties:"drain,default=false"`
}

// ClerkInterval is the pause before each document a clerk files.
func (o Office) ClerkInterval() time.Duration { return time.Duration(o.ClerkDelay) * o.unit() }

// ScannerInterval is the time a scanner spends on each document.
func (o Office) ScannerInterval() time.Duration { return time.Duration(o.ScannerDelay) * o.unit() }

func (o Office) unit() time.Duration {
	if o.TimeUnit == "ms" {
		return time.Millisecond
	}
	return time.Second
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `properties:"log_level,default=info" validate:"oneof=debug info warn error"`
	FileLogName string `properties:"file_log_name,default=logs/office.log"`
	MaxBackups  int    `properties:"max_backups,default=3" validate:"gte=0"`
	MaxAge      int    `properties:"max_age,default=7" validate:"gte=0"`
	MaxSize     int    `properties:"max_size,default=100" validate:"gte=0"`
	Compress    bool   `properties:"compress,default=false"`
	Console     bool   `properties:"console,default=true"`
}

type Snowflake struct {
	Epoch     int64 `properties:"epoch,default=1288834974657"`
	Node      uint8 `properties:"node,default=10" validate:"lte=20"`
	Step      uint8 `properties:"step,default=12" validate:"lte=22"`
	TotalBits uint8 `properties:"total_bits,default=63" validate:"lte=64"`
}

type SnowflakeNode struct {
	Config   Snowflake `properties:"snowflake"`
	WorkerID int64     `properties:"worker_id,default=1" validate:"gte=0"`
}
