package scaffold

// Action is what a target does at its destination.
type Action string

const (
	ActionTemplate Action = "template"
	ActionFolder   Action = "folder"
)

// Target maps a destination, relative to the project root, to an action.
type Target struct {
	Path         string // slash-separated, relative to the project root
	Action       Action
	TemplatePath string // template name in the templates FS (ActionTemplate only)
	Force        bool   // overwrite or accept an existing destination
}

// LoginTargets is the fixed set of files the login generator produces.
// No target depends on another target's output; folders are listed before
// the files they hold only so the output listing reads naturally.
var LoginTargets = []Target{
	{Path: "api/services/passport.js", Action: ActionTemplate, TemplatePath: "Passport_Service.template.js", Force: true},
	{Path: "api/models/User.js", Action: ActionTemplate, TemplatePath: "User_Model.template.js", Force: true},
	{Path: "api/controllers/UserController.js", Action: ActionTemplate, TemplatePath: "User_Controller.template.js", Force: true},
	{Path: "views/user", Action: ActionFolder, Force: true},
	{Path: "views/user/login.ejs", Action: ActionTemplate, TemplatePath: "User_View_Login.template.js", Force: true},
	{Path: "views/user/signup.ejs", Action: ActionTemplate, TemplatePath: "User_View_Signup.template.js", Force: true},
	{Path: "config/secret.js", Action: ActionTemplate, TemplatePath: "Config_Secret.template.js", Force: true},
	{Path: "config/http.js", Action: ActionTemplate, TemplatePath: "Config_http.template.js", Force: true},
}
