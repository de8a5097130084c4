package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"test:view",
		"result:submit",
		"result:view-own",
		"college:view",
		"application:create",
		"application:view-own",
		"profile:update",
	},
	"admin": {
		"*", // everything
	},
}
