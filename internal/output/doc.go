// Package output renders summary reports as plain text or JSON.
package output
