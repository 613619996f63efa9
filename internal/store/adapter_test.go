package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
)

func TestDefaultsOnMissingKeys(t *testing.T) {
	a := NewMockStore()

	require.Empty(t, a.Registry())
	require.Nil(t, a.Session())
	require.Empty(t, a.Members("c_1"))
	require.Empty(t, a.Tasks("c_1"))
	require.Empty(t, a.CheckIns("c_1"))
	require.Equal(t, domain.DefaultSettings(), a.Settings("c_1"))
}

func TestDefaultsOnCorruptValues(t *testing.T) {
	backend := NewMockBackend()
	backend.Data[KeyRegistry] = "{not json"
	backend.Data[KeySession] = "]["
	backend.Data[KeyPrefixTasks+"c_1"] = "42"
	backend.Data[KeyPrefixSettings+"c_1"] = "\"nope\""
	a := NewAdapter(backend, nil)

	require.Empty(t, a.Registry())
	require.Nil(t, a.Session())
	require.Empty(t, a.Tasks("c_1"))
	require.Equal(t, domain.DefaultSettings(), a.Settings("c_1"))
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	backend := NewMockBackend()
	backend.FailPuts = true
	a := NewAdapter(backend, nil)

	// Must not panic or surface an error; the change is simply lost.
	a.SetTasks("c_1", []domain.Task{{ID: "t_1"}})
	require.Empty(t, a.Tasks("c_1"))
}

func TestRegistryIdempotentByEmail(t *testing.T) {
	a := NewMockStore()

	a.AddToRegistry(domain.User{ID: "u_1", Email: "a@x.com", Password: "first"})
	a.AddToRegistry(domain.User{ID: "u_2", Email: "a@x.com", Password: "second"})

	reg := a.Registry()
	require.Len(t, reg, 1)
	require.Equal(t, "u_1", reg[0].ID)
	require.Equal(t, "first", reg[0].Password)
}

func TestSessionSaveAndClear(t *testing.T) {
	a := NewMockStore()

	sess := &domain.Session{ID: "u_1", Email: "a@x.com", CompanyID: "c_1", Role: domain.RoleAdmin}
	a.SaveSession(sess)
	require.Equal(t, sess, a.Session())

	a.SaveSession(nil)
	require.Nil(t, a.Session())
}

func TestSetMembersMirrorsRegistry(t *testing.T) {
	a := NewMockStore()

	members := []domain.Member{
		{ID: "m_1", Name: "Bea", Role: "Consultant", Email: "bea@x.com", Password: "pw", Active: true, CompanyID: "c_1"},
		{ID: "m_2", Name: "Cal", Role: "Intern", Active: true, CompanyID: "c_1"},
	}
	a.SetMembers("c_1", members)

	require.Equal(t, members, a.Members("c_1"))

	reg := a.Registry()
	require.Len(t, reg, 1, "only login-capable members belong in the registry")
	require.Equal(t, "m_1", reg[0].ID)
	require.Equal(t, domain.RoleMember, reg[0].Role)
	require.Equal(t, "bea@x.com", reg[0].Email)
	require.Equal(t, "c_1", reg[0].CompanyID)
}

func TestSetMembersDoesNotOverwriteExistingRegistryEntry(t *testing.T) {
	a := NewMockStore()
	a.AddToRegistry(domain.User{ID: "u_admin", Email: "bea@x.com", Password: "original", Role: domain.RoleAdmin})

	a.SetMembers("c_1", []domain.Member{
		{ID: "m_1", Name: "Bea", Email: "bea@x.com", Password: "other", CompanyID: "c_1"},
	})

	reg := a.Registry()
	require.Len(t, reg, 1)
	require.Equal(t, "original", reg[0].Password, "first registration wins")
	require.Equal(t, domain.RoleAdmin, reg[0].Role)
}

func TestCollectionRoundTripPreservesOrder(t *testing.T) {
	a := NewMockStore()

	tasks := []domain.Task{
		{ID: "t_3", Title: "third", Status: domain.StatusTodo, CompanyID: "c_1"},
		{ID: "t_1", Title: "first", Status: domain.StatusDone, CompanyID: "c_1"},
		{ID: "t_2", Title: "second", Status: domain.StatusInProgress, CompanyID: "c_1"},
	}
	a.SetTasks("c_1", tasks)
	require.Equal(t, tasks, a.Tasks("c_1"))

	checkins := []domain.CheckIn{
		{Date: "2026-09-01", Feeling: domain.FeelingGood, UserID: "u_1"},
		{Date: "2026-09-01", Feeling: domain.FeelingTired, UserID: "u_2"},
	}
	a.SetCheckIns("c_1", checkins)
	require.Equal(t, checkins, a.CheckIns("c_1"))
}

func TestTenantIsolation(t *testing.T) {
	a := NewMockStore()

	a.SetTasks("c_1", []domain.Task{{ID: "t_1", CompanyID: "c_1"}})
	a.SetTasks("c_2", []domain.Task{{ID: "t_2", CompanyID: "c_2"}})

	require.Len(t, a.Tasks("c_1"), 1)
	require.Equal(t, "t_1", a.Tasks("c_1")[0].ID)
	require.Len(t, a.Tasks("c_2"), 1)
	require.Equal(t, "t_2", a.Tasks("c_2")[0].ID)
}

func TestSettingsRoundTrip(t *testing.T) {
	a := NewMockStore()

	s := domain.Settings{TeamName: "Atlas", NotificationsEnabled: false}
	a.SetSettings("c_1", s)
	require.Equal(t, s, a.Settings("c_1"))
}
