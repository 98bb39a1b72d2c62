package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/rackwise/redfish-client/pkg/datamodels/oem/contoso"
	"github.com/rackwise/redfish-client/pkg/datamodels/redfishstd"
	"github.com/rackwise/redfish-client/pkg/redfish/client"
	"github.com/rackwise/redfish-client/pkg/redfish/oem"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
	"github.com/rackwise/redfish-client/pkg/redfish/types"
)

const (
	appName string = "redfishctl"
)

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	cfg := LoadConfiguration(ctx)

	c, err := newClientFromConfig(ctx, cfg)
	if err != nil {
		log.Error("failed to create client", "err", err.Error())
		os.Exit(1)
	}

	err = printInventory(ctx, log, c)
	if err != nil {
		log.Error("failed to read inventory", "err", err.Error())
		os.Exit(1)
	}
}

type Config struct {
	endpoint   string
	username   string
	password   string
	token      string
	schemaPath string
	debug      string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		endpoint:   env.GetVariableOrDefault(ctx, "REDFISH_ENDPOINT", "https://localhost"),
		username:   env.GetVariableOrDefault(ctx, "REDFISH_USERNAME", ""),
		password:   env.GetVariableOrDefault(ctx, "REDFISH_PASSWORD", ""),
		token:      env.GetVariableOrDefault(ctx, "REDFISH_TOKEN", ""),
		schemaPath: env.GetVariableOrDefault(ctx, "REDFISH_SCHEMA_EXTENSIONS", ""),
		debug:      env.GetVariableOrDefault(ctx, "REDFISH_DEBUG", "false"),
	}
}

func newClientFromConfig(ctx context.Context, cfg Config) (client.RedfishClient, error) {
	extra := [][]schema.Fragment{}

	if cfg.schemaPath != "" {
		f, err := os.Open(cfg.schemaPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		fragments, err := schema.LoadFragments(f)
		if err != nil {
			return nil, err
		}

		extra = append(extra, fragments)
	}

	model, err := schema.NewModelFromCatalog(extra...)
	if err != nil {
		return nil, err
	}

	registry := oem.NewRegistry(model)
	if err := contoso.Register(registry); err != nil {
		return nil, err
	}

	transportOptions := []client.TransportOptionFunc{}
	if cfg.username != "" {
		transportOptions = append(transportOptions, client.BasicAuth(cfg.username, cfg.password))
	}
	if cfg.token != "" {
		transportOptions = append(transportOptions, client.Token(cfg.token))
	}

	transport := client.NewHTTPTransport(cfg.endpoint, transportOptions...)

	return client.NewRedfishClient(transport, model, registry, client.Debug(cfg.debug)), nil
}

func printInventory(ctx context.Context, log *slog.Logger, c client.RedfishClient) error {
	root, err := c.ServiceRoot(ctx)
	if err != nil {
		return err
	}

	version, _ := root.Property("RedfishVersion")
	log.Info("connected to service", "version", version)

	systems, ok := root.Links()["Systems"]
	if !ok {
		log.Warn("service reports no systems")
		return nil
	}

	members, err := c.List(ctx, systems.Target)
	if err != nil {
		return err
	}

	for _, member := range members {
		err = printSystem(ctx, log, c, member)
		if err != nil {
			return err
		}
	}

	return nil
}

func printSystem(ctx context.Context, log *slog.Logger, c client.RedfishClient, id string) error {
	system, err := c.Navigate(ctx, id)
	if err != nil {
		return err
	}

	name, _ := system.Property("Name")
	state, _ := system.Property("PowerState")

	l := log.With(slog.String("system", id))
	l.Info("found system", "name", name, "power_state", state)

	storage, ok := system.Links()["Storage"]
	if !ok {
		return nil
	}

	subsystems, err := c.List(ctx, storage.Target)
	if err != nil {
		return err
	}

	for _, subsystem := range subsystems {
		entity, err := c.Navigate(ctx, subsystem)
		if err != nil {
			return err
		}

		drives, ok := entity.Property("Drives")
		if !ok {
			continue
		}

		driveIDs, ok := drives.([]string)
		if !ok {
			continue
		}

		for _, driveID := range driveIDs {
			err = printDrive(ctx, l, c, driveID)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func printDrive(ctx context.Context, log *slog.Logger, c client.RedfishClient, id string) error {
	drive, err := c.NavigateLink(ctx, types.Link{Target: id, Expected: redfishstd.DriveType})
	if err != nil {
		return err
	}

	capacity, _ := drive.Property("CapacityBytes")
	media, _ := drive.Property("MediaType")

	attrs := []any{"capacity_bytes", capacity, "media_type", media}

	if bag, ok := drive.OEM(contoso.Vendor); ok {
		if build, ok := bag["FirmwareBuild"]; ok {
			attrs = append(attrs, "firmware_build", build)
		}
	}

	log.Info("found drive", append([]any{slog.String("drive", id)}, attrs...)...)

	return nil
}
