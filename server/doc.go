// Package server exposes the simulation pipeline over HTTP.
//
// The surface is intentionally small: a health probe and a single
// simulate-deploy endpoint that accepts a JSON request and always answers
// 200 with a full simulation result when the request could be parsed at all.
package server
