package pipeline

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(trace *[]string, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		*trace = append(*trace, name)
		c.Next()
	}
}

func terminal(trace *[]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		*trace = append(*trace, "handler")
		c.Status(http.StatusOK)
	}
}

func runChain(t *testing.T, chain []gin.HandlerFunc) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", chain...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestBuild_CanonicalOrder(t *testing.T) {
	var trace []string

	// Steps declared in a scrambled order still run in canonical order.
	chain := New().
		Body(step(&trace, "body")).
		IDGuard(step(&trace, "id")).
		Guard(step(&trace, "guard")).
		Authenticate(step(&trace, "auth")).
		Handle(terminal(&trace)).
		Build()

	runChain(t, chain)
	assert.Equal(t, []string{"auth", "guard", "id", "body", "handler"}, trace)
}

func TestBuild_GuardsRunInDeclaredOrder(t *testing.T) {
	var trace []string

	chain := New().
		Authenticate(step(&trace, "auth")).
		Guard(step(&trace, "first"), step(&trace, "second")).
		Guard(step(&trace, "third")).
		Handle(terminal(&trace)).
		Build()

	runChain(t, chain)
	assert.Equal(t, []string{"auth", "first", "second", "third", "handler"}, trace)
}

func TestBuild_OmittedStepsAreSkipped(t *testing.T) {
	var trace []string

	chain := New().
		Handle(terminal(&trace)).
		Build()

	runChain(t, chain)
	assert.Equal(t, []string{"handler"}, trace)
}

func TestBuild_PanicsWithoutHandler(t *testing.T) {
	assert.PanicsWithValue(t, "pipeline: route has no handler", func() {
		New().Build()
	})
}

func TestBuild_PanicsOnGuardWithoutAuthenticate(t *testing.T) {
	assert.PanicsWithValue(t, "pipeline: guards require an authenticate step", func() {
		New().
			Guard(func(c *gin.Context) {}).
			Handle(func(c *gin.Context) {}).
			Build()
	})
}

func TestBuild_AbortStopsLaterSteps(t *testing.T) {
	var trace []string

	abortingGuard := func(c *gin.Context) {
		trace = append(trace, "guard")
		c.AbortWithStatus(http.StatusForbidden)
	}

	chain := New().
		Authenticate(step(&trace, "auth")).
		Guard(abortingGuard).
		Body(step(&trace, "body")).
		Handle(terminal(&trace)).
		Build()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", chain...)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, []string{"auth", "guard"}, trace)
}
