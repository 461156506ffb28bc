// Package sshprep prepares the local SSH environment for cluster deployment.
//
// Deployment runs over SSH, so before anything touches a remote machine three
// local conditions are checked and, where safe, fixed:
//
//   - a running ssh-agent holding at least one strong key (AuditAgent)
//   - a client config that auto-accepts new host keys while still rejecting
//     changed ones (EnsureAcceptNew)
//   - a usable private key path to write into the cluster config
//     (DetectKeyPath)
//
// AuditAgent only reports; it never modifies agent state. EnsureAcceptNew
// appends to ~/.ssh/config but is idempotent and never rewrites existing
// content.
package sshprep
