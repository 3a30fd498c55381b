// Package pipeline assembles the middleware chain preceding a handler.
//
// Every resource route runs the same step sequence: token verification and
// principal resolution, role guards, path-identifier shape check, payload
// validation, then the handler. Build emits the steps in that canonical
// order no matter how the route declared them, so ordering invariants
// (identifier guard before body validation, token before role) are enforced
// by the builder rather than by convention. Execution stops at the first
// failing step; its failure is what reaches the client.
package pipeline

import "github.com/gin-gonic/gin"

// Pipeline collects the steps for one route.
type Pipeline struct {
	authenticate gin.HandlerFunc
	guards       []gin.HandlerFunc
	idGuard      gin.HandlerFunc
	body         gin.HandlerFunc
	handler      gin.HandlerFunc
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Authenticate sets the token-verification and principal-resolution step.
func (p *Pipeline) Authenticate(step gin.HandlerFunc) *Pipeline {
	p.authenticate = step
	return p
}

// Guard appends role or capability guards, evaluated in the given order as
// an AND-chain.
func (p *Pipeline) Guard(steps ...gin.HandlerFunc) *Pipeline {
	p.guards = append(p.guards, steps...)
	return p
}

// IDGuard sets the path-identifier shape check.
func (p *Pipeline) IDGuard(step gin.HandlerFunc) *Pipeline {
	p.idGuard = step
	return p
}

// Body sets the payload validation step.
func (p *Pipeline) Body(step gin.HandlerFunc) *Pipeline {
	p.body = step
	return p
}

// Handle sets the terminal handler.
func (p *Pipeline) Handle(h gin.HandlerFunc) *Pipeline {
	p.handler = h
	return p
}

// Build returns the chain in canonical order. It panics at route
// registration time on misuse: a missing handler, or guards declared
// without an authenticate step to produce the principal they inspect.
func (p *Pipeline) Build() []gin.HandlerFunc {
	if p.handler == nil {
		panic("pipeline: route has no handler")
	}
	if len(p.guards) > 0 && p.authenticate == nil {
		panic("pipeline: guards require an authenticate step")
	}

	chain := make([]gin.HandlerFunc, 0, len(p.guards)+4)
	if p.authenticate != nil {
		chain = append(chain, p.authenticate)
	}
	chain = append(chain, p.guards...)
	if p.idGuard != nil {
		chain = append(chain, p.idGuard)
	}
	if p.body != nil {
		chain = append(chain, p.body)
	}
	return append(chain, p.handler)
}
