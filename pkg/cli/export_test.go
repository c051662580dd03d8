package cli

var ParseRemoteURL = parseRemoteURL
