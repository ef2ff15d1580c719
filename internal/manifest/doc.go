// Package manifest reads the launchable component list of a React Native
// application manifest.
//
// A manifest is a JSON object whose "components" array names the
// JavaScript-registered roots a host can mount:
//
//	{
//	    "components": [
//	        { "RNTesterApp": { "displayName": "React-Native Tester", "backgroundColor": "#1E90FF" } }
//	    ]
//	}
//
// Reading is fail-fast: the first malformed entry aborts the read with a
// *errors.ReadError and no partial collection is returned. Collections are
// immutable once built and safe for concurrent use.
package manifest
