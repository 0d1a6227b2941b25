// Package display turns bound values into plain text for an output slot.
package display
