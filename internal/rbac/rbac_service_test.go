package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
)

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	modelText := `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	_, err = e.AddPolicy("employee", "salary", "read_own")
	assert.NoError(t, err)
	_, err = e.AddPolicy("hr", "salary", "update")
	assert.NoError(t, err)
	_, err = e.AddGroupingPolicy("hr", "employee")
	assert.NoError(t, err)

	return e
}

func TestRBACService_Enforce(t *testing.T) {
	service := NewService(newTestEnforcer(t))

	t.Run("direct permission", func(t *testing.T) {
		allowed, err := service.Enforce(EnforceRequest{Role: "hr", Resource: "salary", Action: "update"})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("inherited permission", func(t *testing.T) {
		allowed, err := service.Enforce(EnforceRequest{Role: "HR", Resource: "salary", Action: "read_own"})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("denied", func(t *testing.T) {
		allowed, err := service.Enforce(EnforceRequest{Role: "employee", Resource: "salary", Action: "update"})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("missing role", func(t *testing.T) {
		allowed, err := service.Enforce(EnforceRequest{Resource: "salary", Action: "read_own"})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
