// Package authz centralizes role checks so controllers stop comparing role strings
// inline. One table: (role, action) → allow.
package authz

import "party-meeting-backend/src/models"

// Action names a privileged operation.
type Action string

const (
	ActionMembersCreate     Action = "members:create"
	ActionMembersUpdate     Action = "members:update"
	ActionMembersDelete     Action = "members:delete"
	ActionMeetingsManage    Action = "meetings:manage"
	ActionNotificationsSend Action = "notifications:send"
	ActionMessagesBroadcast Action = "messages:broadcast"
	ActionFilesUpload       Action = "files:upload"
	ActionFilesDelete       Action = "files:delete"
	ActionStatsGenerate     Action = "stats:generate"
)

var policy = map[Action][]string{
	ActionMembersCreate:     {models.RoleSuperAdmin},
	ActionMembersUpdate:     {models.RoleAdmin, models.RoleSuperAdmin},
	ActionMembersDelete:     {models.RoleSuperAdmin},
	ActionMeetingsManage:    {models.RoleAdmin, models.RoleSuperAdmin},
	ActionNotificationsSend: {models.RoleAdmin, models.RoleSuperAdmin},
	ActionMessagesBroadcast: {models.RoleAdmin, models.RoleSuperAdmin},
	ActionFilesUpload:       {models.RoleMember, models.RoleAdmin, models.RoleSuperAdmin},
	ActionFilesDelete:       {models.RoleAdmin, models.RoleSuperAdmin},
	ActionStatsGenerate:     {models.RoleMember, models.RoleAdmin, models.RoleSuperAdmin},
}

// Can reports whether the role may perform the action. Unknown actions deny.
func Can(role string, action Action) bool {
	for _, allowed := range policy[action] {
		if role == allowed {
			return true
		}
	}
	return false
}
