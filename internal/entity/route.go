package entity

import "slices"

const (
	RouteLogin         = "/login"
	RouteDashboard     = "/dashboard"
	RouteLeave         = "/leave-requests"
	RouteAdvance       = "/cash-advance"
	RouteTeam          = "/team"
	RouteMessages      = "/messages"
	RouteNotifications = "/notifications"
	RouteManageLeave   = "/manage-leave"
	RouteManageAdvance = "/manage-advance"
	RouteTeamRequests  = "/team-requests"
)

// Routes lists the roles allowed on each page. A nil slice means any authenticated identity.
var Routes = map[string][]Role{
	RouteDashboard:     nil,
	RouteLeave:         nil,
	RouteAdvance:       nil,
	RouteTeam:          nil,
	RouteMessages:      nil,
	RouteNotifications: nil,
	RouteManageLeave:   {RoleSupervisor},
	RouteManageAdvance: {RoleSupervisor},
	RouteTeamRequests:  {RoleSupervisor},
}

func RouteRoles(route string) ([]Role, bool) {
	roles, ok := Routes[route]
	if !ok {
		return nil, false
	}

	return slices.Clone(roles), true
}

type Verdict string

const (
	VerdictPending  Verdict = "pending"
	VerdictAllow    Verdict = "allow"
	VerdictLogin    Verdict = "login"
	VerdictRedirect Verdict = "redirect"
)

// Decision is the outcome of a route guard check. Redirect is empty unless navigation is required.
type Decision struct {
	Route    string  `json:"route"`
	Verdict  Verdict `json:"verdict"`
	Redirect string  `json:"redirect,omitempty"`
}

func (d Decision) Allowed() bool {
	return d.Verdict == VerdictAllow
}
