package v1

// BasePath is the prefix of every versioned route
const BasePath = "/api/v1/rsa"
