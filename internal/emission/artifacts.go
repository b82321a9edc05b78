package emission

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Artifacts holds whatever could be loaded at startup. A nil field means the
// file was absent; the predictor then runs in degraded mode.
type Artifacts struct {
	Scaler *Scaler
	Model  Regressor
}

// LoadArtifacts reads the scaler and model from dir. Missing files are not an
// error. Unreadable, malformed or feature-mismatched files are, because a
// model fed the wrong columns produces plausible but wrong numbers.
func LoadArtifacts(dir, scalerName, modelName string) (Artifacts, error) {
	var a Artifacts

	var scaler Scaler
	found, err := readYAML(filepath.Join(dir, scalerName), &scaler)
	if err != nil {
		return Artifacts{}, fmt.Errorf("load scaler: %w", err)
	}
	if found {
		if err := scaler.validate(); err != nil {
			return Artifacts{}, err
		}
		a.Scaler = &scaler
	}

	var mf modelFile
	found, err = readYAML(filepath.Join(dir, modelName), &mf)
	if err != nil {
		return Artifacts{}, fmt.Errorf("load model: %w", err)
	}
	if found {
		model, err := mf.build()
		if err != nil {
			return Artifacts{}, err
		}
		a.Model = model
	}

	return a, nil
}

func readYAML(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
