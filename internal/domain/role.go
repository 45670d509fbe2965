package domain

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleRegionalManager Role = "regional_manager"
	RoleTeamLeader      Role = "team_leader"
	RoleFieldOfficer    Role = "field_officer"
)

var roleRank = map[Role]int{
	RoleAdmin:           0,
	RoleRegionalManager: 1,
	RoleTeamLeader:      2,
	RoleFieldOfficer:    3,
}

// Rank orders roles by authority. Lower rank means higher authority.
// Unknown roles rank below every known role.
func Rank(role Role) int {
	if rank, ok := roleRank[role]; ok {
		return rank
	}
	return len(roleRank)
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AllowedAllocationTarget returns the only role a holder of the given role
// may allocate stock to. Field officers have no allocation target.
func AllowedAllocationTarget(from Role) (Role, bool) {
	switch from {
	case RoleAdmin:
		return RoleRegionalManager, true
	case RoleRegionalManager:
		return RoleTeamLeader, true
	case RoleTeamLeader:
		return RoleFieldOfficer, true
	}
	return "", false
}

// CanRecall reports whether a recaller outranks the current holder.
// Admin may always recall. Structural region/team checks are applied
// on top of this by the stock usecase.
func CanRecall(recaller, holder Role) bool {
	if recaller == RoleAdmin {
		return true
	}
	return Rank(recaller) < Rank(holder)
}
