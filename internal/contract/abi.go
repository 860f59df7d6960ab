package contract

// bridgeABI describes the crowdfunding contract surface the client is allowed to call.
const bridgeABI = `[
	{
		"type": "function",
		"name": "create_project",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "owner", "type": "address"},
			{"name": "goal", "type": "int128"},
			{"name": "milestoneAmounts", "type": "int128[]"},
			{"name": "milestoneDeadlines", "type": "uint64[]"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "invest",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "investor", "type": "address"},
			{"name": "amount", "type": "int128"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "submit_evidence",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "projectId", "type": "uint32"},
			{"name": "milestoneIndex", "type": "uint32"},
			{"name": "evidenceHash", "type": "bytes32"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "verify_milestone",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "projectId", "type": "uint32"},
			{"name": "milestoneIndex", "type": "uint32"},
			{"name": "approved", "type": "bool"}
		],
		"outputs": []
	},
	{
		"type": "function",
		"name": "get_project",
		"stateMutability": "view",
		"inputs": [
			{"name": "projectId", "type": "uint32"}
		],
		"outputs": [
			{"name": "raised", "type": "int128"}
		]
	},
	{
		"type": "function",
		"name": "get_investor_amount",
		"stateMutability": "view",
		"inputs": [
			{"name": "projectId", "type": "uint32"},
			{"name": "investor", "type": "address"}
		],
		"outputs": [
			{"name": "amount", "type": "int128"}
		]
	},
	{
		"type": "function",
		"name": "get_project_count",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [
			{"name": "count", "type": "uint32"}
		]
	},
	{
		"type": "event",
		"name": "ProjectCreated",
		"anonymous": false,
		"inputs": [
			{"name": "projectId", "type": "uint32", "indexed": false},
			{"name": "owner", "type": "address", "indexed": false}
		]
	}
]`
