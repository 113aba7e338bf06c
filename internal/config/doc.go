// Package config loads the toastify configuration file.
//
// The file is toastify.json or toastify.yaml (toastify.yml) in the working
// directory; JSON wins when both exist. Every field is optional:
//
//	server:
//	  host: localhost
//	  port: 3000
//	  logLevel: info
//	  metricsPath: /metrics
//	  title: Toastify
//	container:
//	  containerId: main
//	  className: my-toasts
//	  rtl: false
//	  limit: 3
//	  newestOnTop: false
//	  exitTimeoutMs: 1000
//	  style:
//	    z-index: "10000"
//	  defaults:
//	    position: top-right
//	    theme: light
//	    transition: bounce
//	    autoCloseMs: 5000
//	    hideProgressBar: false
//	    closeButton: true
//	    pauseOnHover: true
//	    pauseOnFocusLoss: true
//	    closeOnClick: true
//	    draggable: true
//	    draggablePercent: 80
//	    draggableDirection: x
//	    role: alert
//
// YAML values may reference environment variables as $VAR or ${VAR}.
// Validation errors from a YAML file point at the offending line.
package config
