// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package params

// GetDBInfoArgs holds the parameters of the get-db-info action.
type GetDBInfoArgs struct {
	ShowPassword bool `json:"show-password"`
}

// GetDBInfoResult describes the result of the get-db-info action. Either
// Result is set, when no database is connected, or the connection fields
// are. The credentials are reported, even when empty, only when
// ShowPassword is set.
type GetDBInfoResult struct {
	ShowPassword bool `json:"-"`

	Result   string `json:"result,omitempty"`
	Host     string `json:"db-host,omitempty"`
	Port     string `json:"db-port,omitempty"`
	Username string `json:"db-username,omitempty"`
	Password string `json:"db-password,omitempty"`
}

// Map returns the result as the flat key/value document action-set takes.
func (r GetDBInfoResult) Map() map[string]string {
	out := make(map[string]string)
	if r.Result != "" {
		out["result"] = r.Result
		return out
	}
	out["db-host"] = r.Host
	out["db-port"] = r.Port
	if r.ShowPassword {
		out["db-username"] = r.Username
		out["db-password"] = r.Password
	}
	return out
}

// VersionResult is the document served by the workload's /version
// endpoint.
type VersionResult struct {
	Version string `json:"version"`
}
