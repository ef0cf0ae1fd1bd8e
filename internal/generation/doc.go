// Package generation turns unreliable text-generation backends into a
// dependable source of structured feedback and enrichment data. It defines
// the Adapter boundary implemented by the concrete backend packages under
// internal/platform, and the Orchestrator that walks a priority-ordered
// adapter chain: one attempt per adapter, the first usable response wins,
// and a safe fallback result terminates the chain when every backend fails.
package generation
