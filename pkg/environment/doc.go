// Package environment names the deployment environments the service knows
// about and carries the current one through request contexts and logs.
package environment
