// Package generator runs the login generator against a Sails project.
//
// A run has two phases. Before validates the scope, patches the project's
// package.json and populates the derived scope values. Generate then applies
// scaffold.LoginTargets using the populated scope. Any error aborts the run;
// files written before the failure are left in place.
package generator
