// Package pipeline runs a request document end to end: it parses the
// document, fills a catalogue from the creation commands and answers the
// stat queries in order.
//
// Input layout:
//
//	{
//	    "base_requests":   [ {"type": "Stop", ...}, {"type": "Bus", ...} ],
//	    "stat_requests":   [ {"id": 1, "type": "Bus", "name": "14"}, ... ],
//	    "render_settings": { "width": 1200, ... }
//	}
//
// The answer is a JSON array with one object per stat query, each carrying
// the query id as request_id. Queries naming an unknown bus or stop are
// answered with error_message "not found" and do not stop the run.
package pipeline
