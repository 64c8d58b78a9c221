package authz

import (
	"testing"

	"party-meeting-backend/src/models"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	t.Run("SuperAdminOnlyActions", func(t *testing.T) {
		for _, action := range []Action{ActionMembersCreate, ActionMembersDelete} {
			assert.True(t, Can(models.RoleSuperAdmin, action))
			assert.False(t, Can(models.RoleAdmin, action))
			assert.False(t, Can(models.RoleMember, action))
		}
	})

	t.Run("AdminActions", func(t *testing.T) {
		for _, action := range []Action{ActionMeetingsManage, ActionNotificationsSend, ActionFilesDelete, ActionMembersUpdate} {
			assert.True(t, Can(models.RoleSuperAdmin, action))
			assert.True(t, Can(models.RoleAdmin, action))
			assert.False(t, Can(models.RoleMember, action))
		}
	})

	t.Run("MemberActions", func(t *testing.T) {
		for _, action := range []Action{ActionFilesUpload, ActionStatsGenerate} {
			assert.True(t, Can(models.RoleMember, action))
			assert.True(t, Can(models.RoleAdmin, action))
		}
	})

	t.Run("UnknownDenied", func(t *testing.T) {
		assert.False(t, Can(models.RoleSuperAdmin, Action("system:wipe")))
		assert.False(t, Can("guest", ActionStatsGenerate))
		assert.False(t, Can("", ActionFilesUpload))
	})
}
