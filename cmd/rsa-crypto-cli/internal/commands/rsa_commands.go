package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_crypto_service/internal/domain/rsacrypto"
	"rsa_crypto_service/internal/infrastructure/bundle"
	"rsa_crypto_service/internal/infrastructure/cryptography"
	"rsa_crypto_service/internal/infrastructure/keystore"
	"rsa_crypto_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	importer         *cryptography.KeyImporter
	cryptService     rsacrypto.CryptService
	signatureService rsacrypto.SignatureService
	logger           logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging, a
// key store and the crypto services.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	store, err := keystore.NewInMemoryKeyStore(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store: %w", err)
	}

	codec, err := cryptography.NewKeyCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key codec: %w", err)
	}

	importer, err := cryptography.NewKeyImporter(codec, store, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key importer: %w", err)
	}

	cryptService, err := cryptography.NewCryptService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypt service: %w", err)
	}

	signatureService, err := cryptography.NewSignatureService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	return &RSACommandHandler{
		importer:         importer,
		cryptService:     cryptService,
		signatureService: signatureService,
		logger:           loggerInstance,
	}, nil
}

func readKeyResource(path string) ([]byte, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return bundle.LoadKeyResource(os.DirFS(dir), name)
}

func (commandHandler *RSACommandHandler) importPublicKeyFile(path string) (*cryptography.PublicKey, error) {
	pemText, err := readKeyResource(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}
	return commandHandler.importer.ImportPublicKeyPEM(string(pemText))
}

func (commandHandler *RSACommandHandler) importPrivateKeyFile(path string) (*cryptography.PrivateKey, error) {
	pemText, err := readKeyResource(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}
	return commandHandler.importer.ImportPrivateKeyPEM(string(pemText))
}

// EncryptRSACmd encrypts a file using RSA with chunked PKCS#1 v1.5 padding
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKey, err := commandHandler.importPublicKeyFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := publicKey.Close(); err != nil {
			commandHandler.logger.Warn("failed to release public key: ", err)
		}
	}()

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encrypted, err := commandHandler.cryptService.Encrypt(rsacrypto.NewClearMessage(plainText), publicKey.Handle(), rsacrypto.PaddingPKCS1v15)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFile, encrypted.Bytes(), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptRSACmd decrypts a file using RSA
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKey, err := commandHandler.importPrivateKeyFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := privateKey.Close(); err != nil {
			commandHandler.logger.Warn("failed to release private key: ", err)
		}
	}()

	cipherText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decrypted, err := commandHandler.cryptService.Decrypt(rsacrypto.NewEncryptedMessage(cipherText), privateKey.Handle(), rsacrypto.PaddingPKCS1v15)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFile, decrypted.Bytes(), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// SignRSACmd signs a file using RSA and saves the signature
func (commandHandler *RSACommandHandler) SignRSACmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}
	digestType, err := digestTypeFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := commandHandler.importPrivateKeyFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := privateKey.Close(); err != nil {
			commandHandler.logger.Warn("failed to release private key: ", err)
		}
	}()

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := commandHandler.signatureService.Sign(rsacrypto.NewClearMessage(data), privateKey.Handle(), digestType)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(signatureFilePath, signature.Bytes(), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFilePath)
}

// VerifyRSACmd verifies a signature using RSA
func (commandHandler *RSACommandHandler) VerifyRSACmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}
	digestType, err := digestTypeFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, err := commandHandler.importPublicKeyFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := publicKey.Close(); err != nil {
			commandHandler.logger.Warn("failed to release public key: ", err)
		}
	}()

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signatureBytes, err := os.ReadFile(filepath.Clean(signatureFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid, err := commandHandler.signatureService.Verify(rsacrypto.NewClearMessage(data), publicKey.Handle(), rsacrypto.NewSignature(signatureBytes), digestType)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Error("Signature is invalid")
	}
}

func digestTypeFlag(cmd *cobra.Command) (rsacrypto.DigestType, error) {
	name, err := cmd.Flags().GetString("digest")
	if err != nil {
		return "", fmt.Errorf("invalid digest flag: %w", err)
	}

	switch rsacrypto.DigestType(name) {
	case rsacrypto.DigestSHA1, rsacrypto.DigestSHA224, rsacrypto.DigestSHA256, rsacrypto.DigestSHA384, rsacrypto.DigestSHA512:
		return rsacrypto.DigestType(name), nil
	default:
		return "", fmt.Errorf("unsupported digest type: %s", name)
	}
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a file using RSA",
		Run:   handler.EncryptRSACmd,
	}
	encryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key PEM file")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a file using RSA",
		Run:   handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key PEM file")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var signRSAFileCmd = &cobra.Command{
		Use:   "sign-rsa",
		Short: "Sign a file using RSA",
		Run:   handler.SignRSACmd,
	}
	signRSAFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signRSAFileCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	signRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key PEM file")
	signRSAFileCmd.Flags().StringP("digest", "", "sha256", "Digest algorithm (sha1, sha224, sha256, sha384, sha512)")
	rootCmd.AddCommand(signRSAFileCmd)

	var verifyRSAFileCmd = &cobra.Command{
		Use:   "verify-rsa",
		Short: "Verify a file signature using RSA",
		Run:   handler.VerifyRSACmd,
	}
	verifyRSAFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be validated")
	verifyRSAFileCmd.Flags().StringP("signature-file", "", "", "Path to signature input file")
	verifyRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key PEM file")
	verifyRSAFileCmd.Flags().StringP("digest", "", "sha256", "Digest algorithm (sha1, sha224, sha256, sha384, sha512)")
	rootCmd.AddCommand(verifyRSAFileCmd)
	return nil
}
