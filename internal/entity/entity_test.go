package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

func TestLeaveType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		leaveType entity.LeaveType
		valid     bool
		label     string
	}{
		{entity.LeaveTypeVacation, true, "Congés payés"},
		{entity.LeaveTypeSick, true, "Congé maladie"},
		{entity.LeaveTypePersonal, true, "Congé personnel"},
		{entity.LeaveTypeOther, true, "Autre"},
		{"annual", false, ""},
		{"vacation", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.leaveType), func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.valid, tt.leaveType.Valid())
			require.Equal(t, tt.label, tt.leaveType.Label())
		})
	}
}

func TestRouteRoles(t *testing.T) {
	t.Parallel()

	for _, route := range []string{"/dashboard", "/team", "/messages", "/leave-requests", "/cash-advance"} {
		roles, ok := entity.RouteRoles(route)
		require.True(t, ok, route)
		require.Empty(t, roles, route)
	}

	roles, ok := entity.RouteRoles("/manage-leave")
	require.True(t, ok)
	require.Equal(t, []entity.Role{entity.RoleSupervisor}, roles)

	for _, route := range []string{"/leave", "/advance"} {
		_, ok := entity.RouteRoles(route)
		require.False(t, ok, route)
	}
}

func TestMessage_Between(t *testing.T) {
	t.Parallel()

	m := entity.Message{SenderID: "1", ReceiverID: "2"}

	require.True(t, m.Between("1", "2"))
	require.True(t, m.Between("2", "1"))
	require.False(t, m.Between("1", "3"))
	require.False(t, m.Between("1", "1"))
}
