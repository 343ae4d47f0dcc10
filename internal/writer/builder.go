// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/hubslots/internal/config"
	wmodbus "github.com/tamzrod/hubslots/internal/writer/modbus"
)

// BuildPlan converts the publish config into a Writer Plan.
// Assumes config has already passed validation.
func BuildPlan(p cfg.PublishConfig) (Plan, error) {
	if !p.Enabled() {
		return Plan{}, errors.New("writer: publish.endpoint required")
	}

	return Plan{
		Endpoint:        p.Endpoint,
		UnitID:          p.UnitID,
		CoilAddress:     p.CoilAddress,
		RegisterAddress: p.RegisterAddress,
	}, nil
}

// BuildEndpointClient creates the TCP client for the plan endpoint.
func BuildEndpointClient(p cfg.PublishConfig) (*wmodbus.EndpointClient, func() error, error) {
	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: p.Endpoint,
		Timeout:  time.Duration(p.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}
