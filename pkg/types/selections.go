// Package types holds the shared value types passed between the selection
// layer and the scaffolding pipeline.
package types

// Network is the Aptos network the scaffolded project targets
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkDevnet  Network = "devnet"
)

// Framework is the frontend framework baked into the chosen template
type Framework string

const (
	FrameworkVite   Framework = "vite"
	FrameworkNextJS Framework = "nextjs"
)

// SigningOption is a template-specific sub-choice for how transactions get
// signed in the generated frontend. Empty for templates without the choice.
type SigningOption string

const (
	SigningExplicit SigningOption = "explicit"
	SigningSeamless SigningOption = "seamless"
)

// Selections is the immutable scaffolding input assembled by the selection
// layer. The pipeline never mutates it.
type Selections struct {
	ProjectName   string
	TemplateID    string
	Network       Network
	Framework     Framework
	SigningOption SigningOption
}

// Result is the terminal outcome of one scaffold run. Err is nil on success;
// on failure TargetDir still names whatever partial output was produced.
type Result struct {
	TargetDir   string
	ProjectName string
	Err         error
}

// Failed reports whether the run ended in the failed state
func (r *Result) Failed() bool {
	return r.Err != nil
}
