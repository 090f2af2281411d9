package validate

import "sync"

// globalRegistry is the single global registry for pipeline stages. Stage
// order is registration order, which is the pipeline execution order.
var globalRegistry = &Registry{
	kinds: make(map[string]KindDef),
}

// Registry stores registered stages for execution and discovery.
type Registry struct {
	mu     sync.RWMutex
	stages []StageDef
	kinds  map[string]KindDef // keyed by defect kind
}

// Register appends a stage to the global registry. Call this from the rules
// package; registration order defines pipeline order.
func Register(stage StageDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.stages = append(globalRegistry.stages, stage)
	for _, k := range stage.Kinds {
		globalRegistry.kinds[k.Kind] = k
	}
}

// Stages returns all registered stages in pipeline order.
func Stages() []StageDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	out := make([]StageDef, len(globalRegistry.stages))
	copy(out, globalRegistry.stages)
	return out
}

// LookupKind returns the definition of a defect kind.
func LookupKind(kind string) (KindDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	k, ok := globalRegistry.kinds[kind]
	return k, ok
}

// StageByDomain returns the stage registered for a domain.
func StageByDomain(domain string) (StageDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	for _, s := range globalRegistry.stages {
		if s.Domain == domain {
			return s, true
		}
	}
	return StageDef{}, false
}

// Count returns the number of registered stages.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.stages)
}

// Clear removes all registered stages. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.stages = nil
	globalRegistry.kinds = make(map[string]KindDef)
}
