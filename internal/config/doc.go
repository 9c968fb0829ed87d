// Package config holds the event-study pipeline's configuration: input and
// output locations, logging options, and event-window parameters.
//
// Configuration is loaded from an optional YAML file and overlaid with
// MAE_-prefixed environment variables, environment taking precedence.
// Every load is validated before it reaches the rest of the program.
package config
