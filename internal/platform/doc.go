// Package platform is the per-target start-up plumbing around the bus loop:
// register ownership, the console, clock sanity and the fatal halt.
package platform
