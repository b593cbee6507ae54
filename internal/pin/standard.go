package pin

import (
	"fmt"
	"slices"
	"strings"

	"github.com/water-framework/waterws/internal/errors"
)

// standardOrder preserves catalog declaration order for listings and error
// messages.
var standardOrder = []string{
	"jdbc",
	"api-gateway",
	"service-discovery",
	"cluster-coordinator",
	"authentication-issuer",
}

// catalog is the built-in standard contract table, keyed by mnemonic. Built
// once at package init and never mutated afterwards; every read goes through
// Standard, which returns a deep copy.
var catalog = map[string]*Output{
	"jdbc":                  jdbc(),
	"api-gateway":           apiGateway(),
	"service-discovery":     serviceDiscovery(),
	"cluster-coordinator":   clusterCoordinator(),
	"authentication-issuer": authenticationIssuer(),
}

// Standard returns a deep copy of the standard contract for the given
// mnemonic. The boolean reports whether the mnemonic is known. Mutating a
// returned copy is never observable through another copy or a later call.
func Standard(mnemonic string) (*Output, bool) {
	o, ok := catalog[mnemonic]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// StandardMnemonics returns the catalog mnemonics in catalog order.
func StandardMnemonics() []string {
	return slices.Clone(standardOrder)
}

// UnknownStandardPinError reports a catalog lookup with a mnemonic that is
// not in the standard table.
type UnknownStandardPinError struct {
	Mnemonic string
}

// Error implements the error interface, naming the offending mnemonic and
// enumerating the valid ones.
func (e *UnknownStandardPinError) Error() string {
	return fmt.Sprintf("unknown standard water PIN %q (available: %s)",
		e.Mnemonic, strings.Join(standardOrder, ", "))
}

// Unwrap maps the error onto the validation sentinel.
func (e *UnknownStandardPinError) Unwrap() error {
	return errors.ErrValidation
}

func jdbc() *Output {
	o := NewOutput("it.water.persistence.jdbc")
	o.Required = true
	o.Property("db.host", func(p *Property) {
		p.Description = "Database hostname"
	})
	o.Property("db.port", func(p *Property) {
		p.Default = "5432"
		p.Description = "Database port"
	})
	o.Property("db.username", func(p *Property) {
		p.Description = "Database username"
	})
	o.Property("db.password", func(p *Property) {
		p.Sensitive = true
		p.Description = "Database password"
	})
	o.Property("db.pool.size", func(p *Property) {
		p.Required = false
		p.Default = "10"
		p.Description = "Connection pool size"
	})
	return o
}

func apiGateway() *Output {
	o := NewOutput("it.water.api-gateway")
	o.Property("gateway.base.url", func(p *Property) {
		p.Description = "API Gateway base URL"
	})
	o.Property("gateway.admin.url", func(p *Property) {
		p.Required = false
		p.Description = "API Gateway admin URL"
	})
	o.Property("gateway.timeout.millis", func(p *Property) {
		p.Required = false
		p.Default = "30000"
		p.Description = "Connection timeout in milliseconds"
	})
	return o
}

func serviceDiscovery() *Output {
	o := NewOutput("it.water.service-discovery")
	o.Property("service.name", func(p *Property) {
		p.Description = "Logical service name"
	})
	o.Property("service.instance-id", func(p *Property) {
		p.Required = false
		p.Description = "Unique instance ID (auto UUID if empty)"
	})
	o.Property("service.endpoint", func(p *Property) {
		p.Description = "Service endpoint URL"
	})
	o.Property("service.protocol", func(p *Property) {
		p.Required = false
		p.Default = "HTTP"
		p.Description = "Communication protocol"
	})
	o.Property("service.health-check.endpoint", func(p *Property) {
		p.Required = false
		p.Default = "/actuator/health"
		p.Description = "Health check endpoint path"
	})
	o.Property("service.health-check.interval", func(p *Property) {
		p.Required = false
		p.Default = "30"
		p.Description = "Health check interval in seconds"
	})
	return o
}

func clusterCoordinator() *Output {
	o := NewOutput("it.water.cluster.coordinator")
	o.Property("it.water.connectors.zookeeper.url", func(p *Property) {
		p.Default = "localhost:2181"
		p.Description = "Zookeeper ensemble connection string"
	})
	o.Property("it.water.connectors.zookeeper.base.path", func(p *Property) {
		p.Required = false
		p.Default = "/water-framework/layers"
		p.Description = "Zookeeper base path for Water cluster data"
	})
	o.Property("water.core.cluster.node.id", func(p *Property) {
		p.Description = "Cluster node unique ID"
	})
	o.Property("water.core.cluster.node.layer.id", func(p *Property) {
		p.Description = "Cluster layer identifier"
	})
	o.Property("water.core.cluster.node.host", func(p *Property) {
		p.Required = false
		p.Description = "Node hostname"
	})
	o.Property("water.core.cluster.node.ip", func(p *Property) {
		p.Required = false
		p.Description = "Node IP address"
	})
	o.Property("water.core.cluster.node.use-ip", func(p *Property) {
		p.Required = false
		p.Default = "false"
		p.Description = "Use IP instead of hostname for cluster registration"
	})
	o.Property("water.core.cluster.mode.enabled", func(p *Property) {
		p.Required = false
		p.Default = "false"
		p.Description = "Enable cluster mode"
	})
	return o
}

func authenticationIssuer() *Output {
	o := NewOutput("it.water.integration.authentication-issuer")
	o.Required = true
	o.Property("water.authentication.service.issuer", func(p *Property) {
		p.Default = "water"
		p.Description = "Issuer name for JWT tokens"
	})
	return o
}
