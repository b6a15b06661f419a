// Package xgboost provides a single-tree gradient-boosted regression-tree
// learner for Go, along with a minimal multi-round ensemble driver built on
// top of it.
//
// The core of the library is the xgbtree package: given per-instance
// gradients and Hessians and a sparse, missing-aware feature matrix, it
// grows one CART-style regression tree that greedily minimizes a
// regularized second-order loss via depth-first split-finding, in-place
// instance partitioning, and cost-complexity pruning.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/luheng-uwml/xgboost/xgbtree"
//	)
//
//	func main() {
//	    builder := xgbtree.NewMatrixBuilder(1)
//	    builder.AddRow([]xgbtree.FeatureValue{{Feature: 0, Value: 1}})
//	    builder.AddRow([]xgbtree.FeatureValue{{Feature: 0, Value: 1}})
//	    builder.AddRow([]xgbtree.FeatureValue{{Feature: 0, Value: 3}})
//	    builder.AddRow([]xgbtree.FeatureValue{{Feature: 0, Value: 3}})
//	    smat := builder.Build()
//
//	    params := xgbtree.DefaultTrainingParams(1)
//	    obj := xgbtree.NewSquaredErrorObjective(0, 0, 0)
//
//	    tree, err := xgbtree.DoBoost(context.Background(), params, obj,
//	        []float32{-1, -1, 1, 1}, []float32{1, 1, 1, 1}, smat, nil)
//	    if err != nil {
//	        panic(err)
//	    }
//	    weight, err := tree.Predict(smat.Row(0), 0)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(weight)
//	}
//
// # Packages
//
//   - xgbtree: the tree-growth core (tree store, split selector and
//     enumerator, column builder, pruner, scheduler, predictor) plus the
//     squared-error objective and sparse matrix types.
//   - ensemble: a thin multi-round driver that repeatedly calls
//     xgbtree.DoBoost against residual gradients to build an additive
//     ensemble.
//   - pkg/log: structured logging used by the ensemble driver and CLI.
//   - pkg/errors: structured, stack-traced error types used throughout.
//
// # CLI
//
// cmd/gbtree trains an ensemble from a libsvm-format dataset:
//
//	go run ./cmd/gbtree -data train.libsvm -rounds 50 -max-depth 6 -out model.json
package xgboost
