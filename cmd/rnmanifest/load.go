package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/rnmanifest/internal/logger"
	"github.com/alexisbeaulieu97/rnmanifest/internal/manifest"
	rnerrors "github.com/alexisbeaulieu97/rnmanifest/pkg/errors"
)

// loadManifest resolves path and reads it, turning failures into command errors
// for the given operation.
func loadManifest(operation, path string, log *logger.Logger) (string, *manifest.Manifest, error) {
	abs, err := validateManifestPath(path)
	if err != nil {
		return "", nil, newCommandError(operation, "locating manifest", err, "Pass the path to an existing manifest file.")
	}

	log = log.With("manifest", abs)
	log.Debug("reading manifest")

	m, err := manifest.Load(abs)
	if err != nil {
		log.Error(err, "manifest could not be read")
		return "", nil, newCommandError(operation, "reading manifest", err, suggestionFor(err))
	}

	log.WithFields(map[string]any{"components": m.Components().Count()}).Debug("manifest loaded")
	return abs, m, nil
}

func suggestionFor(err error) string {
	var readErr *rnerrors.ReadError
	if errors.As(err, &readErr) {
		switch readErr.Kind {
		case rnerrors.KindMissingField:
			return fmt.Sprintf("Add the missing field at %s; every component needs \"displayName\" and \"backgroundColor\".", readErr.Path)
		case rnerrors.KindWrongKind:
			return fmt.Sprintf("Quote the value at %s; component fields must be strings.", readErr.Path)
		case rnerrors.KindNotArray:
			return "Declare \"components\" as an array of objects."
		case rnerrors.KindNotObject:
			return "Each component entry must be an object mapping a registry name to its description."
		}
	}

	var parseErr *rnerrors.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		return fmt.Sprintf("Fix the syntax error near line %d.", parseErr.Line)
	}

	return "Check that the manifest is valid JSON."
}

func supportsColor(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
