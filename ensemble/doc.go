// Package ensemble drives the round-by-round gradient-boosting loop on
// top of xgbtree: compute residual gradients against the trees grown so
// far, grow one more tree, fold its scaled predictions into the running
// total. It is a thin reference driver, not a generic boosting framework.
package ensemble
