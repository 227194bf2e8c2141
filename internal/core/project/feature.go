package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/webstrap-cli/webstrap/internal/template"
)

// Feature names an addon installable into an existing project.
type Feature string

const (
	FeatureRedux Feature = "redux"
	FeatureAPI   Feature = "api"
	FeatureAuth  Feature = "auth"
)

// ParseFeature validates a feature name from the command line.
func ParseFeature(s string) (Feature, error) {
	switch Feature(s) {
	case FeatureRedux, FeatureAPI, FeatureAuth:
		return Feature(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected redux, api, or auth)", ErrUnknownFeature, s)
	}
}

// AddFeature installs a single feature into an already generated
// project at root. Framework and language are recovered from the
// project itself; storage is required for the api and auth features.
func (i *Initializer) AddFeature(ctx context.Context, root string, feature Feature, storage AuthStorage) (*InitResult, error) {
	det, err := Detect(root)
	if err != nil {
		return nil, err
	}

	ans := Answers{
		ProjectName: filepath.Base(root),
		Framework:   det.Framework,
		Language:    det.Language,
		Routing:     det.Routing,
		UILibrary:   UILibraryNone,
	}

	var installPkgs []string
	var kinds []template.Kind

	switch feature {
	case FeatureRedux:
		ans.Redux = true
		installPkgs = ReduxPackages
		kinds = []template.Kind{
			template.KindReduxStore, template.KindReduxSlice,
			template.KindReduxThunks, template.KindReduxHooks,
		}
	case FeatureAPI:
		ans.Auth = true
		ans.AuthStorage = storage
		installPkgs = AuthPackages
		kinds = []template.Kind{
			template.KindAPIClient, template.KindRoutes, template.KindEndpoints,
		}
	case FeatureAuth:
		ans.Auth = true
		ans.AuthStorage = storage
		installPkgs = AuthPackages
		kinds = []template.Kind{
			template.KindAPIClient, template.KindRoutes,
			template.KindEndpoints, template.KindAuthHelpers,
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}

	if err := ans.Validate(); err != nil {
		return nil, err
	}

	result := &InitResult{ProjectRoot: root}
	tmplCtx := i.buildContext(ans)

	install := InstallCommand(false, installPkgs...)
	if err := i.runner.Run(ctx, root, install.Name, install.Args...); err != nil {
		return nil, fmt.Errorf("install %s dependencies: %w", feature, err)
	}
	if err := i.writeKinds(root, tmplCtx, result, kinds...); err != nil {
		return nil, err
	}
	return result, nil
}
