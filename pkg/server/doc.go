// Package server serves a live toast container over HTTP.
//
// A Server binds one engine.Engine to a toast.Container and exposes:
//
//	GET    /                          full page with the container and client script
//	GET    /container                 container HTML fragment
//	POST   /api/toasts                show a toast
//	PATCH  /api/toasts/{id}           update a toast
//	DELETE /api/toasts/{id}           dismiss a toast
//	DELETE /api/toasts                dismiss every toast
//	POST   /api/toasts/{id}/pause     pause the auto-close countdown
//	POST   /api/toasts/{id}/resume    resume the countdown
//	POST   /api/toasts/{id}/remove    report the end of the exit animation
//	GET    /ws                        live updates
//	GET    /assets/*                  fingerprinted client script and stylesheet
//	GET    /metrics                   Prometheus metrics
//
// Every engine state change re-renders the container and pushes
//
//	{"type":"render","html":"..."}
//
// to all websocket clients. Clients send interaction messages back over
// the same socket:
//
//	{"type":"pause","id":"..."}
//	{"type":"resume","id":"..."}
//	{"type":"dismiss","id":"..."}
//	{"type":"remove","id":"..."}
//	{"type":"blur"}   pauses toasts that pause on focus loss
//	{"type":"focus"}  resumes them
//	{"type":"action","id":"...","action":"undo-123"}  reported as engine.EventAction
package server
