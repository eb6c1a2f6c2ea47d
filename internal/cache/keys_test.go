package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "hints",
			objectType:  "session",
			identifier:  "01ABC",
			paramsKey:   nil,
			expectedKey: "grammarlab:hints:session:01ABC",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "hints",
			objectType:  "session",
			identifier:  "01ABC",
			paramsKey:   []string{},
			expectedKey: "grammarlab:hints:session:01ABC",
		},
		{
			name:        "with one paramsKey",
			serviceName: "question",
			objectType:  "random",
			identifier:  "fill_in_blank",
			paramsKey:   []string{"v1"},
			expectedKey: "grammarlab:question:random:fill_in_blank:v1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "attempt",
			objectType:  "count",
			identifier:  "xyz",
			paramsKey:   []string{"p1", "p2", "p3"},
			expectedKey: "grammarlab:attempt:count:xyz:p1_p2_p3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestHintSessionKey(t *testing.T) {
	if got := HintSessionKey("01HZX"); got != "grammarlab:hints:session:01HZX" {
		t.Errorf("HintSessionKey() = %v", got)
	}
}
