// Command gbtree trains a gradient-boosted regression-tree ensemble
// against a libsvm-style dataset and reports per-round training RMSE.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/luheng-uwml/xgboost/ensemble"
	gbtreelog "github.com/luheng-uwml/xgboost/pkg/log"
	"github.com/luheng-uwml/xgboost/xgbtree"
)

// dataset is a libsvm-style sparse dataset: "label feat:val feat:val ...".
type dataset struct {
	rows       [][]xgbtree.FeatureValue
	labels     []float32
	numFeature uint32
}

func loadLibSVM(path string) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds := &dataset{}
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cells, label, maxFeature, err := parseLibSVMLine(line, lineNum)
		if err != nil {
			return nil, err
		}

		ds.rows = append(ds.rows, cells)
		ds.labels = append(ds.labels, label)
		if maxFeature > ds.numFeature {
			ds.numFeature = maxFeature
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

func xgtFV(feature uint32, value float32) xgbtree.FeatureValue {
	return xgbtree.FeatureValue{Feature: feature, Value: value}
}

// parseLibSVMLine parses one "label feat:val feat:val ..." line. A
// malformed token is reported as an error rather than left to panic on a
// bad index conversion, by recovering around the parse and turning any
// panic into the same kind of error a bad token already returns.
func parseLibSVMLine(line string, lineNum int) (cells []xgbtree.FeatureValue, label float32, maxFeature uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gbtree: line %d: panic while parsing %q: %v", lineNum, line, r)
		}
	}()

	fields := strings.Fields(line)
	lbl, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("gbtree: line %d: parse label %q: %w", lineNum, fields[0], err)
	}
	label = float32(lbl)

	cells = make([]xgbtree.FeatureValue, 0, len(fields)-1)
	for _, tok := range fields[1:] {
		parts := strings.SplitN(tok, ":", 2)
		if len(parts) != 2 {
			return nil, 0, 0, fmt.Errorf("gbtree: line %d: malformed feature token %q", lineNum, tok)
		}
		idx, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("gbtree: line %d: parse feature index %q: %w", lineNum, parts[0], err)
		}
		val, err := strconv.ParseFloat(parts[1], 32)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("gbtree: line %d: parse feature value %q: %w", lineNum, parts[1], err)
		}
		cells = append(cells, xgtFV(uint32(idx), float32(val)))
		if uint32(idx)+1 > maxFeature {
			maxFeature = uint32(idx) + 1
		}
	}
	return cells, label, maxFeature, nil
}

// modelDump is the on-disk model format written by --out: one entry per
// tree, each a flat array of nodes indexed by NodeID.
type modelDump struct {
	NumFeature uint32       `json:"num_feature"`
	BaseScore  float32      `json:"base_score"`
	Trees      [][]nodeDump `json:"trees"`
	Metrics    []roundDump  `json:"metrics"`
}

type nodeDump struct {
	Leaf        bool    `json:"leaf"`
	Feature     uint32  `json:"feature,omitempty"`
	Threshold   float32 `json:"threshold,omitempty"`
	DefaultLeft bool    `json:"default_left,omitempty"`
	Left        int32   `json:"left,omitempty"`
	Right       int32   `json:"right,omitempty"`
	Weight      float32 `json:"weight,omitempty"`
}

type roundDump struct {
	Round int     `json:"round"`
	RMSE  float64 `json:"rmse"`
}

func dumpTree(t *xgbtree.Tree) []nodeDump {
	nodes := make([]nodeDump, t.NumNodes())
	for i := range nodes {
		n := t.Node(xgbtree.NodeID(i))
		nodes[i] = nodeDump{
			Leaf:        n.IsLeaf(),
			Feature:     n.Feature,
			Threshold:   n.Threshold,
			DefaultLeft: n.DefaultLeft,
			Left:        int32(n.Left),
			Right:       int32(n.Right),
			Weight:      n.Weight,
		}
	}
	return nodes
}

func main() {
	dataPath := flag.String("data", "", "libsvm-style training dataset (required)")
	rounds := flag.Int("rounds", 50, "number of boosting rounds")
	maxDepth := flag.Int("max-depth", 6, "maximum tree depth")
	learningRate := flag.Float64("learning-rate", 0.3, "shrinkage applied to every leaf weight")
	subsample := flag.Float64("subsample", 1.0, "row subsample ratio in (0, 1]")
	minChildWeight := flag.Float64("min-child-weight", 1.0, "minimum Hessian sum required on both sides of a split")
	regLambda := flag.Float64("reg-lambda", 1.0, "L2 leaf-weight regularization")
	regAlpha := flag.Float64("reg-alpha", 0.0, "L1 leaf-weight regularization")
	gamma := flag.Float64("gamma", 0.0, "minimum realized split gain; below this a split is pruned")
	seed := flag.Int64("seed", 0, "RNG seed for subsampling")
	out := flag.String("out", "model.json", "path to write the trained model as JSON")
	plotPath := flag.String("plot", "", "optional path to write a training-curve PNG")
	gradClipNorm := flag.Float64("grad-clip-norm", 0, "cap the L2 norm of each round's gradient vector; 0 disables")
	logLevel := flag.String("log-level", "info", "debug, info, warn, or error")
	logFormat := flag.String("log-format", "text", "text or json")
	flag.Parse()

	gbtreelog.SetupLogger(*logLevel, *logFormat)
	logger := gbtreelog.GetLoggerWithName("cmd/gbtree")
	logger.Info("starting training run",
		gbtreelog.RandomSeedKey, *seed,
		gbtreelog.IterationKey, *rounds,
	)

	if *dataPath == "" {
		log.Fatal("gbtree: -data is required")
	}

	ds, err := loadLibSVM(*dataPath)
	if err != nil {
		log.Fatalf("gbtree: loading dataset: %v", err)
	}

	builder := xgbtree.NewMatrixBuilder(ds.numFeature)
	for _, row := range ds.rows {
		if err := builder.AddRow(row); err != nil {
			log.Fatalf("gbtree: building matrix: %v", err)
		}
	}
	smat := builder.Build()

	treeParams := xgbtree.DefaultTrainingParams(ds.numFeature)
	treeParams.MaxDepth = *maxDepth
	treeParams.LearningRate = float32(*learningRate)
	treeParams.Subsample = float32(*subsample)
	treeParams.MinChildWeight = float32(*minChildWeight)
	treeParams.Rand = rand.New(rand.NewSource(*seed))
	if err := treeParams.Validate(); err != nil {
		log.Fatalf("gbtree: invalid training parameters: %v", err)
	}

	params := ensemble.BoosterParams{
		Tree:         treeParams,
		RegAlpha:     float32(*regAlpha),
		RegLambda:    float32(*regLambda),
		Gamma:        float32(*gamma),
		NumRounds:    *rounds,
		GradClipNorm: float32(*gradClipNorm),
	}

	ens := ensemble.NewEnsemble()
	metrics, err := ens.Fit(context.Background(), smat, ds.labels, params)
	if err != nil {
		log.Fatalf("gbtree: training failed: %v", err)
	}

	dump := modelDump{
		NumFeature: ds.numFeature,
		BaseScore:  params.BaseScore,
		Trees:      make([][]nodeDump, ens.NumTrees()),
	}
	for i := 0; i < ens.NumTrees(); i++ {
		dump.Trees[i] = dumpTree(ens.Tree(i))
	}
	for _, m := range metrics {
		dump.Metrics = append(dump.Metrics, roundDump{Round: m.Round, RMSE: m.RMSE})
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("gbtree: creating %s: %v", *out, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		log.Fatalf("gbtree: writing %s: %v", *out, err)
	}

	if len(metrics) > 0 {
		fmt.Printf("gbtree: trained %d rounds, final RMSE %.6f, model written to %s\n",
			len(metrics), metrics[len(metrics)-1].RMSE, *out)
	}

	if *plotPath != "" {
		if err := ensemble.PlotTrainingCurve(metrics, *plotPath); err != nil {
			log.Fatalf("gbtree: plotting training curve: %v", err)
		}
		fmt.Printf("gbtree: training curve written to %s\n", *plotPath)
	}
}
