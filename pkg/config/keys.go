package config

import (
	"encoding/base64"

	"github.com/magiconair/properties"

	"github.com/fluo-io/fluo-go/pkg/props"
)

// FluoPrefix roots every fluo property key.
const FluoPrefix = "io.fluo"

// Client properties.
const (
	clientPrefix                 = FluoPrefix + ".client"
	ClientApplicationNameProp    = clientPrefix + ".application.name"
	ClientAccumuloPasswordProp   = clientPrefix + ".accumulo.password"
	ClientAccumuloUserProp       = clientPrefix + ".accumulo.user"
	ClientAccumuloInstanceProp   = clientPrefix + ".accumulo.instance"
	ClientAccumuloZookeepersProp = clientPrefix + ".accumulo.zookeepers"
	ClientZookeeperTimeoutProp   = clientPrefix + ".zookeeper.timeout"
	ClientZookeeperConnectProp   = clientPrefix + ".zookeeper.connect"
	ClientRetryTimeoutMsProp     = clientPrefix + ".retry.timeout.ms"
	ClientClassProp              = clientPrefix + ".class"

	ZookeeperTimeoutDefault     = 30000
	AccumuloZookeepersDefault   = "localhost"
	ZookeeperConnectDefault     = "localhost/fluo"
	ClientRetryTimeoutMsDefault = -1
	ClientClassDefault          = FluoPrefix + ".core.client.FluoClientImpl"
)

// Administration properties.
const (
	adminPrefix                = FluoPrefix + ".admin"
	AdminAccumuloTableProp     = adminPrefix + ".accumulo.table"
	AdminAccumuloClasspathProp = adminPrefix + ".accumulo.classpath"
	AdminClassProp             = adminPrefix + ".class"

	AccumuloClasspathDefault = ""
	AdminClassDefault        = FluoPrefix + ".core.client.FluoAdminImpl"
)

// Worker properties.
const (
	workerPrefix          = FluoPrefix + ".worker"
	WorkerNumThreadsProp  = workerPrefix + ".num.threads"
	WorkerInstancesProp   = workerPrefix + ".instances"
	WorkerMaxMemoryMbProp = workerPrefix + ".max.memory.mb"
	WorkerNumCoresProp    = workerPrefix + ".num.cores"

	WorkerNumThreadsDefault  = 10
	WorkerInstancesDefault   = 1
	WorkerMaxMemoryMbDefault = 1024
	WorkerNumCoresDefault    = 1
)

// Loader properties.
const (
	loaderPrefix         = FluoPrefix + ".loader"
	LoaderNumThreadsProp = loaderPrefix + ".num.threads"
	LoaderQueueSizeProp  = loaderPrefix + ".queue.size"

	LoaderNumThreadsDefault = 10
	LoaderQueueSizeDefault  = 10
)

// Oracle properties.
const (
	oraclePrefix          = FluoPrefix + ".oracle"
	OracleInstancesProp   = oraclePrefix + ".instances"
	OracleMaxMemoryMbProp = oraclePrefix + ".max.memory.mb"
	OracleNumCoresProp    = oraclePrefix + ".num.cores"
	OraclePortProp        = oraclePrefix + ".port"

	OracleInstancesDefault   = 1
	OracleMaxMemoryMbDefault = 512
	OracleNumCoresDefault    = 1
	OraclePortDefault        = 9913
)

// MiniFluo properties.
const (
	miniPrefix            = FluoPrefix + ".mini"
	MiniClassProp         = miniPrefix + ".class"
	MiniStartAccumuloProp = miniPrefix + ".start.accumulo"
	MiniDataDirProp       = miniPrefix + ".data.dir"

	MiniClassDefault         = FluoPrefix + ".mini.MiniFluoImpl"
	MiniStartAccumuloDefault = true
	MiniDataDirDefault       = "${env:FLUO_HOME}/mini"
)

// The properties below get loaded into/from Zookeeper.
const (
	// ObserverPrefix namespaces the numbered observer specification keys.
	ObserverPrefix = FluoPrefix + ".observer."

	TransactionPrefix           = FluoPrefix + ".tx"
	TransactionRollbackTimeProp = TransactionPrefix + ".rollback.time"

	MetricsYamlBase64Prop = FluoPrefix + ".metrics.yaml.base64"

	// AppPrefix namespaces arbitrary application defined keys.
	AppPrefix = FluoPrefix + ".app"
)

// TransactionRollbackTimeDefault is the default rollback wait in
// milliseconds.
const TransactionRollbackTimeDefault int64 = 300000

// MetricsYamlBase64Default encodes a metrics configuration that reports
// every 60 seconds.
var MetricsYamlBase64Default = base64.StdEncoding.EncodeToString(
	[]byte("---\nfrequency: 60 seconds\n"))

// Kind classifies the validation rule a setting's accessors apply on both
// reads and writes.
type Kind int

const (
	KindString Kind = iota
	KindRequiredString
	KindAppName
	KindPositiveInt
	KindNonNegativeInt
	KindRetryMs
	KindPort
	KindBool
	KindMillis
	KindBase64
)

// Setting describes one logical fluo setting: its fully qualified key, its
// default when it has one, and the rule its accessors enforce. Observer and
// application keys are dynamic and carry no descriptor.
type Setting struct {
	Key     string
	Default string
	HasDef  bool
	Kind    Kind
}

var settings = []Setting{
	{Key: ClientApplicationNameProp, Kind: KindAppName},
	{Key: ClientAccumuloPasswordProp, Kind: KindString},
	{Key: ClientAccumuloUserProp, Kind: KindRequiredString},
	{Key: ClientAccumuloInstanceProp, Kind: KindRequiredString},
	{Key: ClientAccumuloZookeepersProp, Default: AccumuloZookeepersDefault, HasDef: true, Kind: KindRequiredString},
	{Key: ClientZookeeperTimeoutProp, Default: "30000", HasDef: true, Kind: KindPositiveInt},
	{Key: ClientZookeeperConnectProp, Default: ZookeeperConnectDefault, HasDef: true, Kind: KindRequiredString},
	{Key: ClientRetryTimeoutMsProp, Default: "-1", HasDef: true, Kind: KindRetryMs},
	{Key: ClientClassProp, Default: ClientClassDefault, HasDef: true, Kind: KindRequiredString},
	{Key: AdminAccumuloTableProp, Kind: KindRequiredString},
	{Key: AdminAccumuloClasspathProp, Default: AccumuloClasspathDefault, HasDef: true, Kind: KindString},
	{Key: AdminClassProp, Default: AdminClassDefault, HasDef: true, Kind: KindRequiredString},
	{Key: WorkerNumThreadsProp, Default: "10", HasDef: true, Kind: KindPositiveInt},
	{Key: WorkerInstancesProp, Default: "1", HasDef: true, Kind: KindPositiveInt},
	{Key: WorkerMaxMemoryMbProp, Default: "1024", HasDef: true, Kind: KindPositiveInt},
	{Key: WorkerNumCoresProp, Default: "1", HasDef: true, Kind: KindPositiveInt},
	{Key: LoaderNumThreadsProp, Default: "10", HasDef: true, Kind: KindNonNegativeInt},
	{Key: LoaderQueueSizeProp, Default: "10", HasDef: true, Kind: KindNonNegativeInt},
	{Key: OracleInstancesProp, Default: "1", HasDef: true, Kind: KindPositiveInt},
	{Key: OracleMaxMemoryMbProp, Default: "512", HasDef: true, Kind: KindPositiveInt},
	{Key: OracleNumCoresProp, Default: "1", HasDef: true, Kind: KindPositiveInt},
	{Key: OraclePortProp, Default: "9913", HasDef: true, Kind: KindPort},
	{Key: MiniClassProp, Default: MiniClassDefault, HasDef: true, Kind: KindRequiredString},
	{Key: MiniStartAccumuloProp, Default: "true", HasDef: true, Kind: KindBool},
	{Key: MiniDataDirProp, Default: MiniDataDirDefault, HasDef: true, Kind: KindRequiredString},
	{Key: TransactionRollbackTimeProp, Default: "300000", HasDef: true, Kind: KindMillis},
	{Key: MetricsYamlBase64Prop, Default: MetricsYamlBase64Default, HasDef: true, Kind: KindBase64},
}

// Settings returns the descriptor for every fixed key setting, grouped by
// namespace in declaration order.
func Settings() []Setting {
	out := make([]Setting, len(settings))
	copy(out, settings)
	return out
}

// DefaultProperties returns a layer holding every fluo property that has a
// default. Properties without defaults are not set.
func DefaultProperties() *properties.Properties {
	p := props.Empty()
	for _, s := range settings {
		if s.HasDef {
			p.MustSet(s.Key, s.Default)
		}
	}
	return p
}

// SetDefaultProperties writes every default bearing fluo property into the
// write layer of store.
func SetDefaultProperties(store *props.Store) {
	for _, s := range settings {
		if s.HasDef {
			store.Set(s.Key, s.Default)
		}
	}
}
