package consts

const (
	DashboardSessionKey = "dashboard:session:"
)
