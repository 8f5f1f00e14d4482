// Package runtime locates the Node.js toolchain a generated Sails project
// needs and runs npm inside the project. The generator itself never depends
// on it; the CLI uses it for "check" and "generate login --install".
package runtime
