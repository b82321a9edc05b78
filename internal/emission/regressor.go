package emission

import (
	"fmt"
)

// Regressor maps a scaled feature vector to a predicted emission score.
type Regressor interface {
	Predict(x []float64) float64
	Version() string
}

// modelFile is the on-disk shape of a regression artifact. Kind selects
// which of the remaining fields are meaningful.
type modelFile struct {
	Kind         string    `yaml:"kind"`
	Version      string    `yaml:"version"`
	FeatureNames []string  `yaml:"feature_names"`
	BaseScore    float64   `yaml:"base_score"`
	Trees        []Tree    `yaml:"trees"`
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients"`
}

func (f *modelFile) build() (Regressor, error) {
	if err := checkFeatureNames("model", f.FeatureNames); err != nil {
		return nil, err
	}
	switch f.Kind {
	case "tree_ensemble":
		if err := checkFinite("model", "base_score", f.BaseScore); err != nil {
			return nil, err
		}
		e := &TreeEnsemble{BaseScore: f.BaseScore, Trees: f.Trees, version: f.Version}
		if err := e.validate(len(f.FeatureNames)); err != nil {
			return nil, err
		}
		return e, nil
	case "linear":
		if len(f.Coefficients) != len(f.FeatureNames) {
			return nil, fmt.Errorf("model: %d coefficients for %d features",
				len(f.Coefficients), len(f.FeatureNames))
		}
		if err := checkFinite("model", "intercept", f.Intercept); err != nil {
			return nil, err
		}
		if err := checkFinite("model", "coefficients", f.Coefficients...); err != nil {
			return nil, err
		}
		return &Linear{Intercept: f.Intercept, Coefficients: f.Coefficients, version: f.Version}, nil
	default:
		return nil, fmt.Errorf("model: unsupported kind %q", f.Kind)
	}
}

// Node is a split (Leaf == nil) or a leaf. Samples with
// x[Feature] < Threshold go Left.
type Node struct {
	Feature   int      `yaml:"feature"`
	Threshold float64  `yaml:"threshold"`
	Left      int      `yaml:"left"`
	Right     int      `yaml:"right"`
	Leaf      *float64 `yaml:"leaf"`
}

type Tree struct {
	Nodes []Node `yaml:"nodes"`
}

// TreeEnsemble is a gradient-boosted sum of regression trees.
type TreeEnsemble struct {
	BaseScore float64
	Trees     []Tree
	version   string
}

func (e *TreeEnsemble) Version() string { return e.version }

func (e *TreeEnsemble) Predict(x []float64) float64 {
	sum := e.BaseScore
	for i := range e.Trees {
		sum += e.Trees[i].eval(x)
	}
	return sum
}

func (t *Tree) eval(x []float64) float64 {
	i := 0
	for {
		n := &t.Nodes[i]
		if n.Leaf != nil {
			return *n.Leaf
		}
		if x[n.Feature] < n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// validate guarantees eval terminates: children always point forward.
func (e *TreeEnsemble) validate(numFeatures int) error {
	if len(e.Trees) == 0 {
		return fmt.Errorf("model: tree ensemble has no trees")
	}
	for ti, tree := range e.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("model: tree %d is empty", ti)
		}
		for ni, n := range tree.Nodes {
			if n.Leaf != nil {
				if err := checkFinite("model", fmt.Sprintf("tree %d leaf", ti), *n.Leaf); err != nil {
					return err
				}
				continue
			}
			if err := checkFinite("model", fmt.Sprintf("tree %d threshold", ti), n.Threshold); err != nil {
				return err
			}
			if n.Feature < 0 || n.Feature >= numFeatures {
				return fmt.Errorf("model: tree %d node %d splits on feature %d", ti, ni, n.Feature)
			}
			for _, child := range []int{n.Left, n.Right} {
				if child <= ni || child >= len(tree.Nodes) {
					return fmt.Errorf("model: tree %d node %d has invalid child %d", ti, ni, child)
				}
			}
		}
	}
	return nil
}

// Linear is an ordinary least squares model.
type Linear struct {
	Intercept    float64
	Coefficients []float64
	version      string
}

func (l *Linear) Version() string { return l.version }

func (l *Linear) Predict(x []float64) float64 {
	y := l.Intercept
	for i, c := range l.Coefficients {
		y += c * x[i]
	}
	return y
}
