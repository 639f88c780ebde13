// Package probe locates the text-capable element under keyboard focus or the
// mouse pointer and extracts its selection and caret text.
//
// A cycle runs Resolver → FindFirst → Extractor and hands the resulting
// model.Snapshot to a Reporter. Poller repeats cycles on a fixed cadence.
package probe
