// Package http implements the web transport: the JSON API for catalog
// search, group management, settings and the Word export, plus the embedded
// HTML pages that drive it from the browser.
package http
