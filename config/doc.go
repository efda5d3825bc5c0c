// Package config loads deck-odds settings.
//
// Defaults come from DECK_ODDS_* environment variables (see Config). Combo
// questions can also be described in a scenario file, read with viper in any
// format it supports (YAML, JSON, TOML):
//
//	deck_size: 100
//	turn: 8
//	on_the_play: true
//	groups:
//	  - name: Sanguine Bond
//	    count: 3
//	  - name: Exquisite Blood
//	    count: 2
//	    min: 1
//	    max: 2
package config
