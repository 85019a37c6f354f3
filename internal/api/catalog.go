package api

import (
	"context"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/types"
)

const (
	packagesPath = "/admin/packages"
	featuresPath = "/admin/features"
	settingsPath = "/admin/settings"
)

// Catalog manages pricing packages and the features they bundle.
type Catalog struct {
	client *apiclient.Client
}

// Packages lists packages with their feature records.
func (c *Catalog) Packages(ctx context.Context) ([]types.PackageWithFeatures, error) {
	var env types.Envelope[[]types.PackageWithFeatures]
	if err := c.client.Get(ctx, packagesPath, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Package fetches one package.
func (c *Catalog) Package(ctx context.Context, id string) (types.PackageWithFeatures, error) {
	var env types.Envelope[types.PackageWithFeatures]
	if err := c.client.Get(ctx, entityPath(packagesPath, id), nil, &env); err != nil {
		return types.PackageWithFeatures{}, err
	}
	return env.Data, nil
}

// CreatePackage creates a package.
func (c *Catalog) CreatePackage(ctx context.Context, req types.PackageRequest) (types.Package, error) {
	if err := types.Validate(req); err != nil {
		return types.Package{}, err
	}
	var env types.Envelope[types.Package]
	if err := c.client.Post(ctx, packagesPath, req, &env); err != nil {
		return types.Package{}, err
	}
	return env.Data, nil
}

// UpdatePackage replaces a package.
func (c *Catalog) UpdatePackage(ctx context.Context, id string, req types.PackageRequest) (types.Package, error) {
	if err := types.Validate(req); err != nil {
		return types.Package{}, err
	}
	var env types.Envelope[types.Package]
	if err := c.client.Put(ctx, entityPath(packagesPath, id), req, &env); err != nil {
		return types.Package{}, err
	}
	return env.Data, nil
}

// DeletePackage removes a package.
func (c *Catalog) DeletePackage(ctx context.Context, id string) error {
	var out types.DeleteResponse
	return c.client.Delete(ctx, entityPath(packagesPath, id), &out)
}

// Features lists all features.
func (c *Catalog) Features(ctx context.Context) ([]types.Feature, error) {
	var env types.Envelope[[]types.Feature]
	if err := c.client.Get(ctx, featuresPath, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateFeature creates a feature.
func (c *Catalog) CreateFeature(ctx context.Context, req types.FeatureRequest) (types.Feature, error) {
	if err := types.Validate(req); err != nil {
		return types.Feature{}, err
	}
	var env types.Envelope[types.Feature]
	if err := c.client.Post(ctx, featuresPath, req, &env); err != nil {
		return types.Feature{}, err
	}
	return env.Data, nil
}

// UpdateFeature replaces a feature.
func (c *Catalog) UpdateFeature(ctx context.Context, id string, req types.FeatureRequest) (types.Feature, error) {
	if err := types.Validate(req); err != nil {
		return types.Feature{}, err
	}
	var env types.Envelope[types.Feature]
	if err := c.client.Put(ctx, entityPath(featuresPath, id), req, &env); err != nil {
		return types.Feature{}, err
	}
	return env.Data, nil
}

// DeleteFeature removes a feature. Packages that bundle it drop the reference.
func (c *Catalog) DeleteFeature(ctx context.Context, id string) error {
	var out types.DeleteResponse
	return c.client.Delete(ctx, entityPath(featuresPath, id), &out)
}

// Settings reads and writes platform settings.
type Settings struct {
	client *apiclient.Client
}

// Get returns the current settings.
func (s *Settings) Get(ctx context.Context) (types.PlatformSettings, error) {
	var env types.Envelope[types.PlatformSettings]
	if err := s.client.Get(ctx, settingsPath, nil, &env); err != nil {
		return types.PlatformSettings{}, err
	}
	return env.Data, nil
}

// Update replaces the settings.
func (s *Settings) Update(ctx context.Context, settings types.PlatformSettings) (types.PlatformSettings, error) {
	if err := types.Validate(settings); err != nil {
		return types.PlatformSettings{}, err
	}
	var env types.Envelope[types.PlatformSettings]
	if err := s.client.Put(ctx, settingsPath, settings, &env); err != nil {
		return types.PlatformSettings{}, err
	}
	return env.Data, nil
}
