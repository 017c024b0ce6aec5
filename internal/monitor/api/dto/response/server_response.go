package response

type ServerResponse struct {
	Name           string `json:"name"`
	ProtocolKind   string `json:"protocol_kind"`
	Host           string `json:"host"`
	Port           int    `json:"port"`
	LifecycleState string `json:"lifecycle_state"`
}
