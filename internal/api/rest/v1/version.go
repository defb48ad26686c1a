package v1

// BasePath is the prefix of the storage API routes.
const BasePath = "/api/v1/hbnb"
