package pipeline

// Processor is one stage of the pipeline: it reads whatever fields an
// earlier stage populated on ctx and populates its own, or sets
// ctx.Aborted on a fatal diagnostic.
type Processor interface {
	Process(ctx *Context)
}

// ProcessorFunc adapts a plain function to Processor, the same way
// http.HandlerFunc adapts a function to http.Handler.
type ProcessorFunc func(ctx *Context)

func (f ProcessorFunc) Process(ctx *Context) { f(ctx) }
