// Package route implements the two ancillary, external-facing interfaces
// over a finished polyline: feasibility/safety validation and efficiency
// analytics.
//
// Both validators and the analyzer are total, pure functions: they never
// fail, they return a descriptive (bool, string) pair or a value struct
// rather than an error. They are read-only over the polyline and never
// mutate it.
package route
