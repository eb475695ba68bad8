/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "testing"

func TestFileURI(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "absolute path",
			path: "/var/data/notes.txt",
			want: "file:///var/data/notes.txt",
		},
		{
			name: "root",
			path: "/",
			want: "file:///",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileURI(tt.path); got != tt.want {
				t.Errorf("FileURI(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFromURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{
			name: "valid file URI",
			uri:  "file:///var/data/notes.txt",
			want: "/var/data/notes.txt",
		},
		{
			name:    "http scheme rejected",
			uri:     "http://example.com/notes.txt",
			wantErr: true,
		},
		{
			name:    "bare path rejected",
			uri:     "/var/data/notes.txt",
			wantErr: true,
		},
		{
			name:    "empty path rejected",
			uri:     "file://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathFromURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Errorf("PathFromURI(%q) error = nil, want error", tt.uri)
				}
				return
			}
			if err != nil {
				t.Fatalf("PathFromURI(%q) error = %v", tt.uri, err)
			}
			if got != tt.want {
				t.Errorf("PathFromURI(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}
